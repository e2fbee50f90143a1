// Package client contains the network and local-storage building blocks of
// the TradeMinutes CLI.
//
// # Overview
//
//  1. Transport contracts (AuthClient, NotificationClient, Client) for the
//     auth API and the notification service.
//  2. HTTPClient, the JSON-over-HTTP implementation. Every request carries a
//     fresh X-Request-ID; authenticated calls send "Authorization: Bearer".
//     Response content types are checked before parsing, and decoded bodies
//     are validated against their schema.
//  3. InitDatabase / RunMigrations, which open the local SQLite file and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Failures are typed so callers can branch with errors.Is / errors.As:
// NetworkError (ErrUnavailable), NonJSONResponseError (ErrNonJSONResponse),
// ServerError (ErrUnauthorized on 401/403), FormatError (ErrFormat).
package client
