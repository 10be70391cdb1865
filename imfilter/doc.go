/*
Package imfilter provides the pixel-level operations used by the tracker:
box filtering, central-difference gradients, elementwise products and
bilinear sub-pixel sampling over rimg64 images.

All functions treat their inputs as read-only and allocate their results.
Windows are truncated at the image border and samples beyond the border
repeat the edge value.
*/
package imfilter
