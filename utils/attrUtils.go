package utils

import (
	commonv1 "go.opentelemetry.io/proto/otlp/common/v1"
	resourcev1 "go.opentelemetry.io/proto/otlp/resource/v1"

	"github.com/zerok-ai/zk-otel-datagen/common"
)

// One constructor per value kind. Attribute values are a tagged union; exactly
// one variant is ever populated.

func StringValue(value string) *commonv1.AnyValue {
	return &commonv1.AnyValue{Value: &commonv1.AnyValue_StringValue{StringValue: value}}
}

func IntValue(value int64) *commonv1.AnyValue {
	return &commonv1.AnyValue{Value: &commonv1.AnyValue_IntValue{IntValue: value}}
}

func BoolValue(value bool) *commonv1.AnyValue {
	return &commonv1.AnyValue{Value: &commonv1.AnyValue_BoolValue{BoolValue: value}}
}

func StringAttribute(key string, value string) *commonv1.KeyValue {
	return &commonv1.KeyValue{Key: key, Value: StringValue(value)}
}

func IntAttribute(key string, value int64) *commonv1.KeyValue {
	return &commonv1.KeyValue{Key: key, Value: IntValue(value)}
}

func BoolAttribute(key string, value bool) *commonv1.KeyValue {
	return &commonv1.KeyValue{Key: key, Value: BoolValue(value)}
}

// CommonResource builds the resource envelope shared by batch log and trace
// documents. Extra attributes are appended after the common set, so attribute
// order is stable across runs.
func CommonResource(serviceName string, extraAttrs ...*commonv1.KeyValue) *resourcev1.Resource {
	attrs := []*commonv1.KeyValue{
		StringAttribute(common.OTelResourceServiceName, serviceName),
		StringAttribute("host.name", "docker-desktop"),
		StringAttribute("os.type", "linux"),
		StringAttribute("telemetry.sdk.language", "go"),
		StringAttribute("telemetry.sdk.name", "opentelemetry"),
		StringAttribute("telemetry.sdk.version", "1.37.0"),
	}
	attrs = append(attrs, extraAttrs...)
	return &resourcev1.Resource{Attributes: attrs}
}
