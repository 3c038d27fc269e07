// Package internal contains helper utilities that are intentionally private
// to cognauth, currently secure random generation for oauth state nonces.
//
// # What this package must NOT do
//
//   - Export types that appear in the public cognauth API.
//   - Be imported by any package outside the cognauth module.
package internal
