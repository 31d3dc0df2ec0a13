package http

import (
	"net/http"

	"github.com/aussiebroadwan/ballot/pkg/httpx"
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

// JWKSHandler exposes the public keys that sign vote receipts.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify vote receipts offline.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	votingsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, votingsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
