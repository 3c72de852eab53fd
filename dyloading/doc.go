// Package dyloading implements the contract of the external dyloading
// add function: wrapping 32-bit addition plus the fixed message and
// greeting formats the library writes.
//
// The package-level functions return owned strings instead of writing
// into caller memory, which removes both the buffer-overrun and the
// shared-buffer race hazards of the C ABI. FillMessage is the checked
// variant for callers that still need the write-into-buffer shape; it
// fails with ErrBufferTooSmall rather than overrunning. The raw
// unchecked contract survives only at the exported symbol itself.
//
// The greeting that echoes the buffer's prior contents is
// demonstration behavior inherited from the original library, kept
// because host processes print around it.
package dyloading
