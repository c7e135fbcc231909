// Package imaging provides the image handling around blob labelling: loading
// and caching image files, converting between image.Image and raw RGBA
// buffers, PNG/base64 encoding, cropping labelled blobs, describing color
// tables, and generating noise test images.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, the minimum corner is inclusive and the maximum corner is
//     exclusive, matching image.Rectangle
//
// # Raw Buffers
//
// Raw buffers are row-major, 4 bytes per pixel in R, G, B, A order with no
// row padding and non-premultiplied alpha, the layout of *image.NRGBA with a
// zero origin and Stride == 4*Width.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions
// are stateless.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds
//   - Buffers whose length does not match their dimensions
//   - File I/O errors during image loading or saving
//   - Encoding errors during image output
package imaging
