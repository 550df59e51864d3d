package conv

// BoolOrDefault returns the converted bool value or the provided default if conversion fails.
func BoolOrDefault(from any, defaultValue bool) bool {
	if v, err := defaultConverter.Bool(from); err == nil {
		return v
	}
	return defaultValue
}

// IntOrDefault returns the converted int or the provided default if conversion fails.
func IntOrDefault(from any, defaultValue int) int {
	if v, err := defaultConverter.Int(from); err == nil {
		return v
	}
	return defaultValue
}

// Int64OrDefault returns the converted int64 or the provided default if conversion fails.
func Int64OrDefault(from any, defaultValue int64) int64 {
	if v, err := defaultConverter.Int64(from); err == nil {
		return v
	}
	return defaultValue
}

// Uint64OrDefault returns the converted uint64 or the provided default if conversion fails.
func Uint64OrDefault(from any, defaultValue uint64) uint64 {
	if v, err := defaultConverter.Uint64(from); err == nil {
		return v
	}
	return defaultValue
}

// Float64OrDefault returns the converted float64 or the provided default if conversion fails.
func Float64OrDefault(from any, defaultValue float64) float64 {
	if v, err := defaultConverter.Float64(from); err == nil {
		return v
	}
	return defaultValue
}
