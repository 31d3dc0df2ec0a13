/*
Package votingsdk provides a client SDK for the ballot service and the wire
types shared with its HTTP handlers.

# Overview

	client := votingsdk.NewSDKClient("https://ballot.example.com")

	reg, err := client.Register(ctx, votingsdk.RegisterRequest{
		Name:        "Jane Doe",
		DateOfBirth: "1990-01-01",
		Address:     "1 Main St",
	})

	check, err := client.ValidateToken(ctx, reg.Token)
	if !check.Valid {
		fmt.Println("token cannot be used:", check.Reason)
	}

	vote, err := client.Vote(ctx, reg.Token, "Bernie Sanders")

	results, err := client.Results(ctx)

# Errors

Failed requests return an *APIError. The predefined errors compare equal
by code, so callers can branch with errors.Is:

	_, err := client.Vote(ctx, token, "Bernie Sanders")
	switch {
	case errors.Is(err, votingsdk.ErrTokenAlreadyUsed):
		// the token was spent; nothing to retry
	case errors.Is(err, votingsdk.ErrUnavailable):
		// outcome unknown; ValidateToken tells whether the vote landed
	}

# Receipts

A successful vote carries a signed receipt. It names the ballot, its ledger
position and entry hash, never the token or the voter, and can be checked
at any time:

	ok, err := client.VerifyReceipt(ctx, vote.Receipt)
*/
package votingsdk
