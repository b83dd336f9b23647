// Package catalog persists parsed corpus pages and their quiz questions in a
// relational store so downstream rendering layers can query them without
// re-walking the filesystem.
package catalog
