// Package superblock recognises HDF5 files by their superblock signature.
//
// Octave can save variables as HDF5 instead of text. Such files are not read
// by this module, but tools need to tell them apart from text files.
//
// # File Signature
//
// HDF5 files are identified by an 8-byte signature at the start of the
// superblock: 0x89 H D F \r \n 0x1a \n (hex: 89 48 44 46 0D 0A 1A 0A).
// The byte after the signature is the superblock version.
//
// A file may begin with a user block, in which case the superblock sits at
// offset 512, 1024 or 2048. [Locate] searches those offsets; [Match] only
// checks the start of a buffer.
package superblock
