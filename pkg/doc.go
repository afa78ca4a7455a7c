// Package dupfinder finds duplicate files by content.
//
// # Core API
//
// The main entry point is Finder, which runs a staged verification
// pipeline over a directory tree:
//
//	finder := dupfinder.NewFinder(dupfinder.Options{Root: "/path/to/dir"}, notify)
//	result, err := finder.Run(shutdown)
//	for _, group := range result.Groups {
//		fmt.Printf("%d copies of %d bytes: %v\n", len(group.Records), group.Size, group.Paths())
//	}
//
// Candidates pass through four stages, each cheaper than the next and
// each only applied to files that survived the previous one: size
// bucketing, a fingerprint of the first 8 KiB, a fingerprint of the
// whole file, and finally a byte-for-byte comparison. Only the last
// stage can confirm a duplicate.
//
// # Reporting
//
// A ScanResult renders three ways: WriteConsoleReport for a colored
// terminal summary, BuildReport/WriteJSONReport for a structured
// export, and WriteScript for an executable removal script that keeps
// one file per group.
package dupfinder
