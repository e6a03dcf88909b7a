// Package ring provides a fixed-capacity FIFO buffer safe for
// concurrent use.
//
// [Buffer] never blocks and never grows: [Buffer.TryPush] reports
// failure when the buffer is full and [Buffer.TryPop] reports failure
// when it is empty. Callers that need to wait for space or data build
// that on top, which is exactly what the parent mpsc package does.
package ring
