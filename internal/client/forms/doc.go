// Package forms implements the submit lifecycle of the client's forms.
//
// Every form is a small state machine:
//
//	editing -> submitting -> succeeded
//	                      -> failed -> editing (on the next edit)
//
// A submit only leaves editing when local validation passes. Follow-up
// navigation after a successful auth submit is delayed by FollowUpDelay so
// the success message is visible first.
package forms
