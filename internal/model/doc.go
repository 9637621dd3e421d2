package model

// Package model defines domain data structures used across the app: file
// descriptors, validation outcomes, simulated upload tasks, the persisted image
// record and the view state rendered by the UI. Structures are designed for
// direct binding in the UI and explicit state transitions.
