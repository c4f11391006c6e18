// Package testutil provides shared test utilities for primespiral.
//
// # Fixtures
//
//   - ImageNames(n) - n zero-padded file names that sort in rank order
//   - SampleConfig - a spiral.yaml exercising every field
//
// # Environment Helpers
//
//   - SetupGallery(t, n) - temp directory with n images and no config
//   - WriteTestFile(t, base, path, content) - writes a file in a test dir
//   - Chdir(t, dir) - changes directory for the duration of a test
//   - ContextWithTestDeadline(t, fallback) - context bounded by the test deadline
//
// # Assertions
//
//   - AssertGridCoverage(t, grid, n) - every rank 1..n appears once, no empty rows
//   - AssertPrimeFlags(t, grid) - IsPrime matches trial division for every item
package testutil
