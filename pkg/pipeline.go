package dupfinder

// Options configures one scan. Verbosity, path display and hard-link
// handling are all carried here explicitly; no stage consults
// process-wide state.
type Options struct {
	// Root is the directory to scan.
	Root string

	// BasePath is the absolute form of Root, used for relative path
	// display and report metadata.
	BasePath string

	// Recursive scans the whole subtree; otherwise only direct
	// children of Root are considered.
	Recursive bool

	Verbose          bool
	ShowSize         bool
	IncludeHardlinks bool
	RelativePaths    bool

	// Filter is the optional name filter; nil accepts every file.
	Filter *NameFilter

	// Algorithm is the fingerprint digest; nil selects the default.
	Algorithm *FingerprintAlgorithm

	// ReadBuffer bounds hashing and comparison chunk sizes; zero
	// selects DefaultReadBuffer.
	ReadBuffer int
}

// Finder sequences the four verification stages. Each stage consumes
// the mapping it is handed and produces a new one; no stage retains its
// output after handing it off and no stage needs information from a
// later stage.
type Finder struct {
	opts   Options
	notify Notifier
}

// NewFinder builds a Finder, filling in defaulted options.
func NewFinder(opts Options, notify Notifier) *Finder {
	if opts.Algorithm == nil {
		alg, err := GetFingerprintAlgorithm(DefaultAlgorithm)
		if err != nil {
			panic("dupfinder: default fingerprint algorithm unavailable: " + err.Error())
		}
		opts.Algorithm = alg
	}
	if opts.ReadBuffer <= 0 {
		opts.ReadBuffer = DefaultReadBuffer
	}
	if opts.BasePath == "" {
		opts.BasePath = opts.Root
	}
	return &Finder{opts: opts, notify: notify}
}

// Options returns the effective scan options.
func (f *Finder) Options() Options {
	return f.opts
}

// Run executes the pipeline: collect, size-bucket, partial fingerprint,
// full fingerprint, byte verify. The shutdown channel is observed
// between stages (and between read chunks inside the full fingerprint
// stage); an interrupted run returns ErrInterrupted rather than partial
// groups.
func (f *Finder) Run(shutdown <-chan struct{}) (*ScanResult, error) {
	candidates, err := CollectCandidates(f.opts.Root, f.opts.Recursive, f.opts.Filter, f.notify)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{CandidateCount: candidates.Len()}
	if candidates.Len() == 0 {
		return result, nil
	}
	f.notify.ScanningFiles(candidates.Len())

	if err := checkShutdown(shutdown); err != nil {
		return nil, err
	}
	sizeBuckets := bucketBySize(candidates, f.notify)

	if err := checkShutdown(shutdown); err != nil {
		return nil, err
	}
	partialBuckets := bucketByPartialFingerprint(f.opts.Algorithm, sizeBuckets, f.notify)

	if err := checkShutdown(shutdown); err != nil {
		return nil, err
	}
	fullBuckets, err := bucketByFullFingerprint(f.opts.Algorithm, partialBuckets, f.opts.ReadBuffer, f.notify, shutdown)
	if err != nil {
		return nil, err
	}

	if err := checkShutdown(shutdown); err != nil {
		return nil, err
	}
	result.Groups = verifyBuckets(fullBuckets, f.opts.IncludeHardlinks, f.opts.ReadBuffer, f.notify)

	return result, nil
}

func checkShutdown(shutdown <-chan struct{}) error {
	select {
	case <-shutdown:
		return ErrInterrupted
	default:
		return nil
	}
}
