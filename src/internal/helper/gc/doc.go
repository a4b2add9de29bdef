// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library behind a small interface. The PEM decoder
// accumulates armored bodies in pooled buffers, the loader reads files through them,
// and the JSON logger renders entries into them.
//
// Pooled buffers must never escape the call that borrowed them: copy the bytes out
// before returning the buffer with Put.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
