package mdtext

import "bytes"

// StripFrontMatter removes YAML front matter delimited by "---" lines
// from the start of source. It returns the front matter block
// (including delimiters) and the remaining content. Without front
// matter, prefix is nil and content is source. CRLF delimiters are
// accepted.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	delim := []byte("---\n")
	if bytes.HasPrefix(source, []byte("---\r\n")) {
		delim = []byte("---\r\n")
	}
	if !bytes.HasPrefix(source, delim) {
		return nil, source
	}
	rest := source[len(delim):]
	idx := bytes.Index(rest, delim)
	if idx < 0 || (idx > 0 && rest[idx-1] != '\n') {
		return nil, source
	}
	end := len(delim) + idx + len(delim)
	return source[:end], source[end:]
}
