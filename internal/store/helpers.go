package store

// maxListLimit is a defense-in-depth cap on limit values for list queries.
const maxListLimit = 1000
