// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ProjectPilot client.
//
// All Msg* constants are human-readable messages shown to the user when an
// operation against the remote project store fails. They never carry
// transport details (status codes, URLs); those go to the log only.
package app

const (
	// MsgLoginAgain is shown when the remote store answers 401 or the
	// configured bearer token has already expired.
	MsgLoginAgain = "Please login again."

	// MsgNoPermission is shown when the remote store answers 403.
	MsgNoPermission = "You do not have permission to view the project(s)."

	// MsgRetrievalFailed is shown for any other failure while fetching a
	// page of projects, including network errors.
	MsgRetrievalFailed = "There was an error retrieving the project(s). Please try again."

	// MsgUpdateFailed is shown for any failure while saving a project.
	MsgUpdateFailed = "There was an error updating the project. Please try again."

	// MsgFindFailed is shown for any failure while fetching a single project.
	MsgFindFailed = "There was an error finding the project. Please try again."

	// MsgUnexpectedResponse is shown when the server answered 2xx with a
	// body that is not shaped like project records.
	MsgUnexpectedResponse = "The server returned an unexpected response. Please try again."
)
