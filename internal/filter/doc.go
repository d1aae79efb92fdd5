// Package filter provides separable convolution filters over intensity fields.
//
// The Gaussian filter follows the usual scientific-computing convention:
// sigma is the standard deviation in pixels, the kernel is truncated at
// four standard deviations, and samples beyond the field edge are treated
// as a constant (zero by default).
package filter
