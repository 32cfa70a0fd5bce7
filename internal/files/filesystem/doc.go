// Package filesystem provides the file access abstraction used by the
// reconciler.
//
// The FileSystem interface covers exactly the operations the tool needs:
// read, write, mkdir, stat and rename. OSFileSystem backs production runs;
// MemoryFileSystem lets unit tests exercise descriptor and manifest I/O
// without touching disk. WriteAtomic implements the temp-then-rename
// commit used for manifest rewrites.
package filesystem
