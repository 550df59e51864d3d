package conv

// defaultConverter backs the package-level OrDefault functions and StringSlice
// so callers don't need to build their own Converter for the common case.
var defaultConverter = NewConverter()
