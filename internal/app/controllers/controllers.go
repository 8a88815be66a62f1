// Package controllers adapts HTTP requests to the service layer and renders
// its results as JSON.
package controllers

// messageHeader carries a short human-readable outcome on success
const messageHeader = "X-Message"
