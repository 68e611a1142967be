package types

// DataType identifies the source domain of an embedded user event.
type DataType string

const (
	DataTypeHealth         DataType = "health"
	DataTypeLocation       DataType = "location"
	DataTypeVoice          DataType = "voice"
	DataTypePhoto          DataType = "photo"
	DataTypeText           DataType = "text"
	DataTypeSharedActivity DataType = "shared_activity"
)

// String returns the string representation of DataType
func (t DataType) String() string {
	return string(t)
}
