// Package charset recovers readable text from pages whose declared
// and actual encodings may disagree.
//
// Candidate encodings are tried in order and the first decode with
// fewer replacement characters (U+FFFD) than the configured threshold
// wins. When every candidate fails, the bytes are decoded as lossy
// UTF-8, so decoding never fails.
package charset
