package cache

// RequestCacher keeps a short per-key history of recent requests.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
