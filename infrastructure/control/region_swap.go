package control

// swapRegions reorders buf in place from [a][b][rest] to [b][a][rest],
// where a is buf[:aLen] and b is buf[aLen:aLen+bLen]. Total length and rest
// are untouched. This is the exact byte rearrangement the authenticated
// deserializer applies to move the auth region ahead of the packet prefix.
func swapRegions(buf []byte, aLen, bLen int) {
	tmp := make([]byte, aLen)
	copy(tmp, buf[:aLen])
	copy(buf[:bLen], buf[aLen:aLen+bLen])
	copy(buf[bLen:aLen+bLen], tmp)
}
