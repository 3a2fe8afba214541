// Package prompt provides the line-oriented question/answer seam used while
// collecting a module definition. Two drivers ship with the package: a
// survey-backed terminal driver and a plain reader/writer driver for piped
// input. Tests script answers through their own Driver implementations.
package prompt
