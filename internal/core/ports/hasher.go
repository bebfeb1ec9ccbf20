package ports

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash hashes the salt and the content of every path.
	ComputeInputHash(paths []string, salt string) (string, error)

	// ComputeOutputHash hashes the content of every path. A missing path is an error.
	ComputeOutputHash(paths []string) (string, error)
}
