/*
Package authsdk provides a client SDK for the passport authentication service.

# Overview

SDKClient covers every public endpoint. Session wraps a bearer token for the
calls that need one.

	client := authsdk.NewSDKClient("https://auth.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Create an account. No token is returned.
	err = client.Register(ctx, authsdk.RegisterRequest{
		Username: "alice_w",
		Email:    "alice@example.com",
		Password: "Sup3r-secret",
	})

	// Log in by username or email
	session, err := client.AuthenticateWithPassword(ctx, "alice@example.com", "Sup3r-secret")

	// Resolve the token back to its user
	user, err := session.GetUser(ctx)

# Tokens

Tokens are valid for 30 days and are not refreshed. When GetUser fails with
code EXP, call Session.Reauthenticate or log in again. Renaming or removing
the account makes existing tokens fail with code NMF.

# Error Handling

Every non-2xx response is returned as *APIError. Kind is one of bad_input,
unauthorized, conflict or storage_failure. Token failures set Code; bad input
sets Problems with every violated rule per field.

	err := client.Register(ctx, req)
	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == authsdk.KindBadInput {
		for field, problems := range apiErr.Problems {
			fmt.Println(field, problems)
		}
	}

GetRules returns the same rule tables the server validates with, so forms can
check input before submitting it.

# Thread Safety

SDKClient and Session are safe for concurrent use.
*/
package authsdk
