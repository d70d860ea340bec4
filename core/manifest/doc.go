// Package manifest pulls single fields out of JAR style manifest text.
//
// The product's true version lives in its archive manifest as a
// "Key: value" line, for example "Jenkins-Version: 2.528.3". ExtractField
// finds one such key and returns its value; when the key repeats the first
// occurrence wins. Everything else about the manifest format, including
// continuation lines, is deliberately ignored.
package manifest
