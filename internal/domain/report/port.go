package report

import "context"

// Renderer turns a summary into a document body
type Renderer interface {
	Render(s Summary) ([]byte, error)
}

// Archive port (interface untuk penyimpanan report)
type Archive interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Narrator writes a short plain-text commentary on a projection
type Narrator interface {
	Narrate(ctx context.Context, s Summary) (string, error)
}
