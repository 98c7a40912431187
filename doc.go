/*
Package id3 reads ID3 tags embedded in audio files.

Supported versions

This package reads ID3v1 (and the v1.1 track-number extension), ID3v2.2,
ID3v2.3 and ID3v2.4. It does not write tags, with the exception of a minimal
ID3v2.4 round-trip encoder kept for tests and for tools that want to rewrite
a tag they just read.

Version detection

Use ProbeVersion to find the highest-priority tag version present in a file
(ID3v2 is preferred over a trailing ID3v1 tag) or ProbeVersions to get every
recognised version, v2 first. Parse does both the probing and the full
decode in one call.

Unsynchronisation

ID3v2 tags may apply an "unsynchronisation" transform to the tag body so
that it never contains a byte sequence that looks like an MPEG frame sync.
The transform is reversible: every FF 00 pair in the stream collapses back
to a single FF. This package reverses it transparently via unsyncReader
before any frame is decoded; see unsync.go.

Known limitations

The following are intentionally not implemented, matching gaps already
present in the tooling this package was modeled on:

  - The ID3v2.4 footer ("3DI", mirroring the header at the end of the tag)
    is never read, even when the footer-present flag is set.
  - Frame body compression (zlib) is not decompressed. The data-length
    indicator is recorded on Frame.Flags but the body bytes handed to the
    caller are still compressed.
  - CRC-32 and encryption are recorded as flags/diagnostics only; neither is
    verified or decrypted.

Accessing frames

Tag.Frames holds every decoded frame in a map keyed by frame identifier.
Frames under one identifier keep their arrival order; the order across
different identifiers is not kept. Tag also exposes getter methods (Title,
Artist, Album, Comment, ...) for the common frames.
*/
package id3
