package decode

// config holds the Decoder's tunable behavior. The zero value is the
// default: lenient decoding, matching the original implementation's
// silence on duplicate keys, duplicate class names, and overlapping
// object value-windows.
type config struct {
	strict bool
}

// Option configures a Decoder.
type Option func(*config)

// WithStrictValidation additionally rejects duplicate key names, duplicate
// class names, and objects whose value-windows overlap. These are never
// rejected by default, since the format itself does not require uniqueness
// or non-overlap and real archives may rely on the leniency.
func WithStrictValidation() Option {
	return func(c *config) {
		c.strict = true
	}
}
