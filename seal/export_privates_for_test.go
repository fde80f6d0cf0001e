package seal

// Test-only re-exports of private helpers.
var SealWithNonce = sealWithNonce
