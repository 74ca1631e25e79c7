package proc

import "errors"

var (
	ErrMalformedToken           = errors.New("malformed address token")
	ErrUnsupportedAddressLength = errors.New("unsupported hex address length")
	ErrMalformedPort            = errors.New("malformed port")
	ErrTableParse               = errors.New("socket table parse error")
	ErrInodeDecode              = errors.New("socket inode decode error")
	ErrNameResolution           = errors.New("command name resolution error")
)
