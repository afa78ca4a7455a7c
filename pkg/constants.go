package dupfinder

const (
	// PartialReadLimit is the prefix length digested by the partial
	// fingerprint stage.
	PartialReadLimit = 8192

	// DefaultReadBuffer bounds the chunk size for full-content hashing
	// and byte comparison. Overridable via the [scan] read_buffer
	// config key.
	DefaultReadBuffer = 8192
)

// DefaultAlgorithm is the fingerprint algorithm used when neither the
// command line nor the config file selects one.
const DefaultAlgorithm = "blake3"
