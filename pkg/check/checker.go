package check

// Checker is implemented by all static check types.
// Each check validates one aspect of the project tree
// and returns a Result indicating success or failure.
//
// Implementations:
//   - filecheck.Check: required file exists under the project root
//   - dfxcheck.Check: dfx.json exists, parses and declares the canisters
//   - groupcheck.Check: a directory and its required files (soft)
type Checker interface {
	Run() Result
}
