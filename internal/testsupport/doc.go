// Package testsupport holds fixtures shared by package tests: isolated
// configs rooted in t.TempDir and a sample inventory.
package testsupport
