package hashtable

// KeyTooLong - Custom error to inform that a key does not fit the fixed key buffer of the table's items
type KeyTooLong struct {
	msg string
}

// Error - Used to notify that a key is too long
func (K KeyTooLong) Error() string {
	if K.msg == "" {
		return "key too long"
	}
	return K.msg
}

// InvalidKey - Custom error to inform that a key can not be stored, such as a key holding a NUL byte in a
// fixed key buffer
type InvalidKey struct {
	msg string
}

// Error - Used to notify that a key is invalid
func (I InvalidKey) Error() string {
	if I.msg == "" {
		return "invalid key"
	}
	return I.msg
}
