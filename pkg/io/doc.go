// Package io provides file and stream I/O for analysis documents and
// converted graphs.
//
// # Overview
//
// Two kinds of document flow through the conversion pipeline, and this
// package reads and writes both:
//
//   - Analysis documents: the JSON exports produced by ecosystem
//     analyzers. These are read in generic decoded form so that format
//     detection can classify them by shape before a converter projects
//     them onto typed records. Use [ImportFile] for files or
//     [ReadAnalysis] for any io.Reader.
//   - Graph documents: the node-link JSON this tool produces. Use
//     [ExportGraph] and [WriteGraph] to write, and [ImportGraph] to
//     read one back (for rendering or inspecting a stored result).
//
// # Errors
//
// Failures carry structured codes from the errors package: a missing
// input file is FILE_NOT_FOUND, an unwritable output path is
// INVALID_PATH, and undecodable JSON is INVALID_INPUT. Graph documents
// are additionally validated on import, so a structurally broken
// document fails with INVALID_GRAPH rather than surfacing later in a
// renderer or store.
//
// # Concurrency
//
// All functions create independent values and hold no package state;
// they are safe for concurrent use.
package io
