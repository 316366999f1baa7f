package services

import (
	"encoding/base64"

	"go.mongodb.org/mongo-driver/bson"
)

// ImageData returns the base64 payload and codec of an image record.
func ImageData(doc bson.Raw) (payload, codec string, err error) {
	codecVal, err := doc.LookupErr("type")
	if err != nil {
		return "", "", ErrDecode
	}
	payloadVal, err := doc.LookupErr("image")
	if err != nil {
		return "", "", ErrDecode
	}

	var ok bool
	if codec, ok = codecVal.StringValueOK(); !ok {
		return "", "", ErrDecode
	}
	if payload, ok = payloadVal.StringValueOK(); !ok {
		return "", "", ErrDecode
	}
	return payload, codec, nil
}

// DecodeImage returns the raw image bytes and their image/<codec> content type.
func DecodeImage(doc bson.Raw) ([]byte, string, error) {
	payload, codec, err := ImageData(doc)
	if err != nil {
		return nil, "", err
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrDecode
	}
	return data, "image/" + codec, nil
}
