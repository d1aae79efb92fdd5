// Package tfrecord reads and writes TFRecord files holding tf.train.Example
// messages.
//
// A TFRecord file is a plain sequence of records:
//
//	uint64 length          (little endian)
//	uint32 masked crc32c   of the 8 length bytes
//	byte   data[length]
//	uint32 masked crc32c   of data
//
// The Example protobuf is encoded directly with protowire, so no generated
// code or TensorFlow dependency is needed.
package tfrecord
