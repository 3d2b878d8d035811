package processing

import "time"

type Option func(*Coordinator)

func SignedURLTTL(ttl time.Duration) Option {
	return func(c *Coordinator) {
		if ttl > 0 {
			c.signedURLTTL = ttl
		}
	}
}

func Topic(topic string) Option {
	return func(c *Coordinator) {
		if topic != "" {
			c.topic = topic
		}
	}
}

// MaxPixels bounds the decoded size of an upload.
func MaxPixels(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.maxPixels = n
		}
	}
}

func Clock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}
