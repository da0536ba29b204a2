package roc

import "errors"

var (
	// ErrIndexOutOfRange reports a time, node or engine index outside the bounds of its container.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTimeNotFound reports an evaluation time missing from a node's time axis.
	ErrTimeNotFound = errors.New("time not found in node time axis")

	// ErrNodeNotFound reports an event node absent from the posterior source or marginal record.
	ErrNodeNotFound = errors.New("node not found")

	// ErrUndefinedAUC reports an event set with no positive or no negative labels.
	// The AUC normalization divides by positives*negatives, so no value exists.
	ErrUndefinedAUC = errors.New("undefined AUC")

	// ErrUnknownRecipe reports an unrecognized recipe name.
	ErrUnknownRecipe = errors.New("unknown recipe")

	// ErrUnknownLabelPolicy reports a LabelPolicy value outside the defined constants.
	ErrUnknownLabelPolicy = errors.New("unknown label policy")
)
