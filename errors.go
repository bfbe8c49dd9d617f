package linearhashing

// ConfigurationError - Custom error to inform that a table could not be created from the given parameters
type ConfigurationError struct {
	msg string
}

// Error - Used to notify that table parameters are invalid
func (E ConfigurationError) Error() string {
	if E.msg == "" {
		return "invalid table configuration"
	}
	return E.msg
}

// TableDestroyed - Custom error to inform that the table has been destroyed and can't be used anymore
type TableDestroyed struct {
	msg string
}

// Error - Used to notify that the table is destroyed
func (E TableDestroyed) Error() string {
	if E.msg == "" {
		return "table destroyed"
	}
	return E.msg
}

// AddressOutOfRange - Custom error to inform that an address algorithm returned a bucket address outside
// the current address space
type AddressOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket address is out of range
func (E AddressOutOfRange) Error() string {
	if E.msg == "" {
		return "bucket address out of range"
	}
	return E.msg
}
