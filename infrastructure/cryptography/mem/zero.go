package mem

import "runtime"

// ZeroBytes overwrites b with zeros. Used to wipe key material before its
// backing storage is released.
//
// runtime.KeepAlive keeps the slice live through the loop so the stores are
// not eliminated as dead. Best-effort: the GC may already have moved the
// bytes, so this reduces exposure rather than guaranteeing erasure.
func ZeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
