// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: roster/v1/roster.proto

package rosterv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type DutyRosterRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Calendar date in the school's timezone, formatted YYYY-MM-DD.
	DutyDate string `protobuf:"bytes,1,opt,name=duty_date,json=dutyDate,proto3" json:"duty_date,omitempty"`
}

func (x *DutyRosterRequest) Reset() {
	*x = DutyRosterRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DutyRosterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DutyRosterRequest) ProtoMessage() {}

func (x *DutyRosterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DutyRosterRequest.ProtoReflect.Descriptor instead.
func (*DutyRosterRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{0}
}

func (x *DutyRosterRequest) GetDutyDate() string {
	if x != nil {
		return x.DutyDate
	}
	return ""
}

type DutyRosterResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Rules []*DutyRule `protobuf:"bytes,1,rep,name=rules,proto3" json:"rules,omitempty"`
}

func (x *DutyRosterResponse) Reset() {
	*x = DutyRosterResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DutyRosterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DutyRosterResponse) ProtoMessage() {}

func (x *DutyRosterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DutyRosterResponse.ProtoReflect.Descriptor instead.
func (*DutyRosterResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{1}
}

func (x *DutyRosterResponse) GetRules() []*DutyRule {
	if x != nil {
		return x.Rules
	}
	return nil
}

type DutyRule struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id           string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	InstructorId string `protobuf:"bytes,2,opt,name=instructor_id,json=instructorId,proto3" json:"instructor_id,omitempty"`
	// Wall-clock bounds of the duty window, formatted HH:MM. End is exclusive.
	StartTime string                 `protobuf:"bytes,3,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"`
	EndTime   string                 `protobuf:"bytes,4,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	IsActive  bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	VoidedAt  *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=voided_at,json=voidedAt,proto3" json:"voided_at,omitempty"`
}

func (x *DutyRule) Reset() {
	*x = DutyRule{}
	if protoimpl.UnsafeEnabled {
		mi := &file_roster_v1_roster_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DutyRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DutyRule) ProtoMessage() {}

func (x *DutyRule) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DutyRule.ProtoReflect.Descriptor instead.
func (*DutyRule) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{2}
}

func (x *DutyRule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DutyRule) GetInstructorId() string {
	if x != nil {
		return x.InstructorId
	}
	return ""
}

func (x *DutyRule) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *DutyRule) GetEndTime() string {
	if x != nil {
		return x.EndTime
	}
	return ""
}

func (x *DutyRule) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *DutyRule) GetVoidedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.VoidedAt
	}
	return nil
}

var File_roster_v1_roster_proto protoreflect.FileDescriptor

var file_roster_v1_roster_proto_rawDesc = []byte{
	0x0a, 0x16, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2f, 0x76, 0x31, 0x2f, 0x72, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x09, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72,
	0x2e, 0x76, 0x31, 0x1a, 0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x62, 0x75, 0x66, 0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x22, 0x30, 0x0a, 0x11, 0x44, 0x75, 0x74, 0x79, 0x52, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x64, 0x75, 0x74,
	0x79, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x64, 0x75,
	0x74, 0x79, 0x44, 0x61, 0x74, 0x65, 0x22, 0x3f, 0x0a, 0x12, 0x44, 0x75, 0x74, 0x79, 0x52, 0x6f,
	0x73, 0x74, 0x65, 0x72, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x29, 0x0a, 0x05,
	0x72, 0x75, 0x6c, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x72, 0x6f,
	0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x75, 0x74, 0x79, 0x52, 0x75, 0x6c, 0x65,
	0x52, 0x05, 0x72, 0x75, 0x6c, 0x65, 0x73, 0x22, 0xcf, 0x01, 0x0a, 0x08, 0x44, 0x75, 0x74, 0x79,
	0x52, 0x75, 0x6c, 0x65, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x02, 0x69, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x69, 0x6e, 0x73, 0x74, 0x72, 0x75, 0x63, 0x74,
	0x6f, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x69, 0x6e, 0x73,
	0x74, 0x72, 0x75, 0x63, 0x74, 0x6f, 0x72, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x74, 0x61,
	0x72, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73,
	0x74, 0x61, 0x72, 0x74, 0x54, 0x69, 0x6d, 0x65, 0x12, 0x19, 0x0a, 0x08, 0x65, 0x6e, 0x64, 0x5f,
	0x74, 0x69, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x65, 0x6e, 0x64, 0x54,
	0x69, 0x6d, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x69, 0x73, 0x5f, 0x61, 0x63, 0x74, 0x69, 0x76, 0x65,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x69, 0x73, 0x41, 0x63, 0x74, 0x69, 0x76, 0x65,
	0x12, 0x37, 0x0a, 0x09, 0x76, 0x6f, 0x69, 0x64, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x06, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52,
	0x08, 0x76, 0x6f, 0x69, 0x64, 0x65, 0x64, 0x41, 0x74, 0x32, 0x5d, 0x0a, 0x0d, 0x52, 0x6f, 0x73,
	0x74, 0x65, 0x72, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x4c, 0x0a, 0x0d, 0x47, 0x65,
	0x74, 0x44, 0x75, 0x74, 0x79, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x12, 0x1c, 0x2e, 0x72, 0x6f,
	0x73, 0x74, 0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x75, 0x74, 0x79, 0x52, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x72, 0x6f, 0x73, 0x74,
	0x65, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x75, 0x74, 0x79, 0x52, 0x6f, 0x73, 0x74, 0x65, 0x72,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x3f, 0x5a, 0x3d, 0x67, 0x69, 0x74, 0x68,
	0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x6f, 0x70, 0x73,
	0x2f, 0x66, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x6c, 0x69, 0x6e, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x73, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x2f, 0x76, 0x31,
	0x3b, 0x72, 0x6f, 0x73, 0x74, 0x65, 0x72, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
}

var (
	file_roster_v1_roster_proto_rawDescOnce sync.Once
	file_roster_v1_roster_proto_rawDescData = file_roster_v1_roster_proto_rawDesc
)

func file_roster_v1_roster_proto_rawDescGZIP() []byte {
	file_roster_v1_roster_proto_rawDescOnce.Do(func() {
		file_roster_v1_roster_proto_rawDescData = protoimpl.X.CompressGZIP(file_roster_v1_roster_proto_rawDescData)
	})
	return file_roster_v1_roster_proto_rawDescData
}

var file_roster_v1_roster_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_roster_v1_roster_proto_goTypes = []any{
	(*DutyRosterRequest)(nil),     // 0: roster.v1.DutyRosterRequest
	(*DutyRosterResponse)(nil),    // 1: roster.v1.DutyRosterResponse
	(*DutyRule)(nil),              // 2: roster.v1.DutyRule
	(*timestamppb.Timestamp)(nil), // 3: google.protobuf.Timestamp
}
var file_roster_v1_roster_proto_depIdxs = []int32{
	2, // 0: roster.v1.DutyRosterResponse.rules:type_name -> roster.v1.DutyRule
	3, // 1: roster.v1.DutyRule.voided_at:type_name -> google.protobuf.Timestamp
	0, // 2: roster.v1.RosterService.GetDutyRoster:input_type -> roster.v1.DutyRosterRequest
	1, // 3: roster.v1.RosterService.GetDutyRoster:output_type -> roster.v1.DutyRosterResponse
	3, // [3:4] is the sub-list for method output_type
	2, // [2:3] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_roster_v1_roster_proto_init() }
func file_roster_v1_roster_proto_init() {
	if File_roster_v1_roster_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_roster_v1_roster_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*DutyRosterRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*DutyRosterResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_roster_v1_roster_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*DutyRule); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_roster_v1_roster_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_roster_v1_roster_proto_goTypes,
		DependencyIndexes: file_roster_v1_roster_proto_depIdxs,
		MessageInfos:      file_roster_v1_roster_proto_msgTypes,
	}.Build()
	File_roster_v1_roster_proto = out.File
	file_roster_v1_roster_proto_rawDesc = nil
	file_roster_v1_roster_proto_goTypes = nil
	file_roster_v1_roster_proto_depIdxs = nil
}
