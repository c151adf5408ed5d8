// Package api serves the local inspection HTTP surface of the study
// state: health, the persisted state, due cards and card reviews. It
// adapts HTTP requests to the review service and the application store,
// which stays the single writer of the state.
package api
