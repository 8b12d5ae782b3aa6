// Package contact implements the server side of a website contact form:
// it validates and sanitizes the posted fields, gates out automated
// submissions with a honeypot and a reCAPTCHA verification, routes the
// message to the mailbox responsible for its category, and dispatches a
// plain-text email.
//
// Processing is stateless per request and strictly forward: spam gate,
// sanitization, verification, routing, dispatch. The first failing stage
// short-circuits to the failure outcome; the browser is always redirected
// to one of exactly two static result pages, with the distinguishing detail
// recorded only in server-side logs.
package contact
