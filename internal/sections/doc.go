// Package sections splits raw document text into titled, role-classified
// sections. Heading detection is heuristic: Markdown hashes, ALL-CAPS
// lines, and numbered section prefixes. A structure-aware variant exists
// for Markdown input.
package sections
