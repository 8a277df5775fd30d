//go:build !protogen

package roster

// NewRemoteProvider is a no-op without generated proto stubs; callers fall
// back to the DB provider when it returns nil.
func NewRemoteProvider(_ string) (Provider, error) {
	return nil, nil
}
