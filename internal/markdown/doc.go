// Package markdown loads corpus pages from the filesystem, splitting
// front-matter from Markdown bodies and rendering bodies into HTML.
package markdown
