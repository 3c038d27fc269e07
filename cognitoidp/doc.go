// Package cognitoidp implements the provider wire protocol: JSON POST
// requests to the regional identity endpoint with an X-Amz-Target header
// naming the operation. Error bodies decode into [ProviderError]; transport
// failures wrap [ErrTransport] so callers can separate connectivity
// problems from provider rejections.
package cognitoidp
