package domain

// Zero overwrites key bytes and decrypted buffers once they are no longer needed.
func Zero(b []byte) {
	clear(b)
}
