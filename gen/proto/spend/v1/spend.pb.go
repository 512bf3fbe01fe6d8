// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: spend/v1/spend.proto

package spendpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Vendor struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	NormalizedName string                 `protobuf:"bytes,3,opt,name=normalized_name,json=normalizedName,proto3" json:"normalized_name,omitempty"`
	Domain         string                 `protobuf:"bytes,4,opt,name=domain,proto3" json:"domain,omitempty"`
	Category       string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	VendorType     string                 `protobuf:"bytes,6,opt,name=vendor_type,json=vendorType,proto3" json:"vendor_type,omitempty"`
	IsSaas         bool                   `protobuf:"varint,7,opt,name=is_saas,json=isSaas,proto3" json:"is_saas,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Vendor) Reset() {
	*x = Vendor{}
	mi := &file_spend_v1_spend_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vendor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vendor) ProtoMessage() {}

func (x *Vendor) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vendor.ProtoReflect.Descriptor instead.
func (*Vendor) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{0}
}

func (x *Vendor) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vendor) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vendor) GetNormalizedName() string {
	if x != nil {
		return x.NormalizedName
	}
	return ""
}

func (x *Vendor) GetDomain() string {
	if x != nil {
		return x.Domain
	}
	return ""
}

func (x *Vendor) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Vendor) GetVendorType() string {
	if x != nil {
		return x.VendorType
	}
	return ""
}

func (x *Vendor) GetIsSaas() bool {
	if x != nil {
		return x.IsSaas
	}
	return false
}

func (x *Vendor) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Vendor) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Subscription struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId          string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	VendorId        string                 `protobuf:"bytes,3,opt,name=vendor_id,json=vendorId,proto3" json:"vendor_id,omitempty"`
	Source          string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	Plan            string                 `protobuf:"bytes,5,opt,name=plan,proto3" json:"plan,omitempty"`
	Seats           int32                  `protobuf:"varint,6,opt,name=seats,proto3" json:"seats,omitempty"`
	BillingCycle    string                 `protobuf:"bytes,7,opt,name=billing_cycle,json=billingCycle,proto3" json:"billing_cycle,omitempty"`
	RenewalDate     string                 `protobuf:"bytes,8,opt,name=renewal_date,json=renewalDate,proto3" json:"renewal_date,omitempty"` // YYYY-MM-DD, empty when unknown
	Amount          string                 `protobuf:"bytes,9,opt,name=amount,proto3" json:"amount,omitempty"`                              // decimal string, empty when unknown
	Currency        string                 `protobuf:"bytes,10,opt,name=currency,proto3" json:"currency,omitempty"`
	ConfidenceScore string                 `protobuf:"bytes,11,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	Status          string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	LastDetectedAt  string                 `protobuf:"bytes,13,opt,name=last_detected_at,json=lastDetectedAt,proto3" json:"last_detected_at,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Subscription) Reset() {
	*x = Subscription{}
	mi := &file_spend_v1_spend_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Subscription) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Subscription) ProtoMessage() {}

func (x *Subscription) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Subscription.ProtoReflect.Descriptor instead.
func (*Subscription) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{1}
}

func (x *Subscription) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Subscription) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Subscription) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *Subscription) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Subscription) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

func (x *Subscription) GetSeats() int32 {
	if x != nil {
		return x.Seats
	}
	return 0
}

func (x *Subscription) GetBillingCycle() string {
	if x != nil {
		return x.BillingCycle
	}
	return ""
}

func (x *Subscription) GetRenewalDate() string {
	if x != nil {
		return x.RenewalDate
	}
	return ""
}

func (x *Subscription) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Subscription) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Subscription) GetConfidenceScore() string {
	if x != nil {
		return x.ConfidenceScore
	}
	return ""
}

func (x *Subscription) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Subscription) GetLastDetectedAt() string {
	if x != nil {
		return x.LastDetectedAt
	}
	return ""
}

func (x *Subscription) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Subscription) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type VendorSummary struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	VendorName           string                 `protobuf:"bytes,1,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	NormalizedVendorName string                 `protobuf:"bytes,2,opt,name=normalized_vendor_name,json=normalizedVendorName,proto3" json:"normalized_vendor_name,omitempty"`
	TotalAmount          string                 `protobuf:"bytes,3,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	TransactionCount     int32                  `protobuf:"varint,4,opt,name=transaction_count,json=transactionCount,proto3" json:"transaction_count,omitempty"`
	AverageAmount        string                 `protobuf:"bytes,5,opt,name=average_amount,json=averageAmount,proto3" json:"average_amount,omitempty"`
	MinAmount            string                 `protobuf:"bytes,6,opt,name=min_amount,json=minAmount,proto3" json:"min_amount,omitempty"`
	MaxAmount            string                 `protobuf:"bytes,7,opt,name=max_amount,json=maxAmount,proto3" json:"max_amount,omitempty"`
	LatestAmount         string                 `protobuf:"bytes,8,opt,name=latest_amount,json=latestAmount,proto3" json:"latest_amount,omitempty"`
	FirstDate            string                 `protobuf:"bytes,9,opt,name=first_date,json=firstDate,proto3" json:"first_date,omitempty"`
	LastDate             string                 `protobuf:"bytes,10,opt,name=last_date,json=lastDate,proto3" json:"last_date,omitempty"`
	IsSaas               bool                   `protobuf:"varint,11,opt,name=is_saas,json=isSaas,proto3" json:"is_saas,omitempty"`
	Category             string                 `protobuf:"bytes,12,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *VendorSummary) Reset() {
	*x = VendorSummary{}
	mi := &file_spend_v1_spend_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VendorSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VendorSummary) ProtoMessage() {}

func (x *VendorSummary) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VendorSummary.ProtoReflect.Descriptor instead.
func (*VendorSummary) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{2}
}

func (x *VendorSummary) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *VendorSummary) GetNormalizedVendorName() string {
	if x != nil {
		return x.NormalizedVendorName
	}
	return ""
}

func (x *VendorSummary) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *VendorSummary) GetTransactionCount() int32 {
	if x != nil {
		return x.TransactionCount
	}
	return 0
}

func (x *VendorSummary) GetAverageAmount() string {
	if x != nil {
		return x.AverageAmount
	}
	return ""
}

func (x *VendorSummary) GetMinAmount() string {
	if x != nil {
		return x.MinAmount
	}
	return ""
}

func (x *VendorSummary) GetMaxAmount() string {
	if x != nil {
		return x.MaxAmount
	}
	return ""
}

func (x *VendorSummary) GetLatestAmount() string {
	if x != nil {
		return x.LatestAmount
	}
	return ""
}

func (x *VendorSummary) GetFirstDate() string {
	if x != nil {
		return x.FirstDate
	}
	return ""
}

func (x *VendorSummary) GetLastDate() string {
	if x != nil {
		return x.LastDate
	}
	return ""
}

func (x *VendorSummary) GetIsSaas() bool {
	if x != nil {
		return x.IsSaas
	}
	return false
}

func (x *VendorSummary) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type UploadCSVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"` // raw CSV text
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadCSVRequest) Reset() {
	*x = UploadCSVRequest{}
	mi := &file_spend_v1_spend_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadCSVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadCSVRequest) ProtoMessage() {}

func (x *UploadCSVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadCSVRequest.ProtoReflect.Descriptor instead.
func (*UploadCSVRequest) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{3}
}

func (x *UploadCSVRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadCSVRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadCSVRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type UploadCSVResponse struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	UploadId              string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	TotalRows             int32                  `protobuf:"varint,2,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	TransactionCount      int32                  `protobuf:"varint,3,opt,name=transaction_count,json=transactionCount,proto3" json:"transaction_count,omitempty"`
	SaasCount             int32                  `protobuf:"varint,4,opt,name=saas_count,json=saasCount,proto3" json:"saas_count,omitempty"`
	SubscriptionsUpserted int32                  `protobuf:"varint,5,opt,name=subscriptions_upserted,json=subscriptionsUpserted,proto3" json:"subscriptions_upserted,omitempty"`
	RowErrors             []string               `protobuf:"bytes,6,rep,name=row_errors,json=rowErrors,proto3" json:"row_errors,omitempty"`
	Summaries             []*VendorSummary       `protobuf:"bytes,7,rep,name=summaries,proto3" json:"summaries,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *UploadCSVResponse) Reset() {
	*x = UploadCSVResponse{}
	mi := &file_spend_v1_spend_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadCSVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadCSVResponse) ProtoMessage() {}

func (x *UploadCSVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadCSVResponse.ProtoReflect.Descriptor instead.
func (*UploadCSVResponse) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{4}
}

func (x *UploadCSVResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *UploadCSVResponse) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *UploadCSVResponse) GetTransactionCount() int32 {
	if x != nil {
		return x.TransactionCount
	}
	return 0
}

func (x *UploadCSVResponse) GetSaasCount() int32 {
	if x != nil {
		return x.SaasCount
	}
	return 0
}

func (x *UploadCSVResponse) GetSubscriptionsUpserted() int32 {
	if x != nil {
		return x.SubscriptionsUpserted
	}
	return 0
}

func (x *UploadCSVResponse) GetRowErrors() []string {
	if x != nil {
		return x.RowErrors
	}
	return nil
}

func (x *UploadCSVResponse) GetSummaries() []*VendorSummary {
	if x != nil {
		return x.Summaries
	}
	return nil
}

type ScanInboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	MaxMessages   int32                  `protobuf:"varint,2,opt,name=max_messages,json=maxMessages,proto3" json:"max_messages,omitempty"` // 0 = server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanInboxRequest) Reset() {
	*x = ScanInboxRequest{}
	mi := &file_spend_v1_spend_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanInboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanInboxRequest) ProtoMessage() {}

func (x *ScanInboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanInboxRequest.ProtoReflect.Descriptor instead.
func (*ScanInboxRequest) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{5}
}

func (x *ScanInboxRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ScanInboxRequest) GetMaxMessages() int32 {
	if x != nil {
		return x.MaxMessages
	}
	return 0
}

type ScanInboxResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Total           int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Duplicates      int32                  `protobuf:"varint,2,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	NotSubscription int32                  `protobuf:"varint,3,opt,name=not_subscription,json=notSubscription,proto3" json:"not_subscription,omitempty"`
	NoSignal        int32                  `protobuf:"varint,4,opt,name=no_signal,json=noSignal,proto3" json:"no_signal,omitempty"`
	Upserted        int32                  `protobuf:"varint,5,opt,name=upserted,proto3" json:"upserted,omitempty"`
	Errors          int32                  `protobuf:"varint,6,opt,name=errors,proto3" json:"errors,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ScanInboxResponse) Reset() {
	*x = ScanInboxResponse{}
	mi := &file_spend_v1_spend_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanInboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanInboxResponse) ProtoMessage() {}

func (x *ScanInboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanInboxResponse.ProtoReflect.Descriptor instead.
func (*ScanInboxResponse) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{6}
}

func (x *ScanInboxResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ScanInboxResponse) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *ScanInboxResponse) GetNotSubscription() int32 {
	if x != nil {
		return x.NotSubscription
	}
	return 0
}

func (x *ScanInboxResponse) GetNoSignal() int32 {
	if x != nil {
		return x.NoSignal
	}
	return 0
}

func (x *ScanInboxResponse) GetUpserted() int32 {
	if x != nil {
		return x.Upserted
	}
	return 0
}

func (x *ScanInboxResponse) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

type ListSubscriptionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubscriptionsRequest) Reset() {
	*x = ListSubscriptionsRequest{}
	mi := &file_spend_v1_spend_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubscriptionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubscriptionsRequest) ProtoMessage() {}

func (x *ListSubscriptionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubscriptionsRequest.ProtoReflect.Descriptor instead.
func (*ListSubscriptionsRequest) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{7}
}

func (x *ListSubscriptionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListSubscriptionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Subscriptions []*Subscription        `protobuf:"bytes,1,rep,name=subscriptions,proto3" json:"subscriptions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSubscriptionsResponse) Reset() {
	*x = ListSubscriptionsResponse{}
	mi := &file_spend_v1_spend_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSubscriptionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSubscriptionsResponse) ProtoMessage() {}

func (x *ListSubscriptionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSubscriptionsResponse.ProtoReflect.Descriptor instead.
func (*ListSubscriptionsResponse) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{8}
}

func (x *ListSubscriptionsResponse) GetSubscriptions() []*Subscription {
	if x != nil {
		return x.Subscriptions
	}
	return nil
}

type ListVendorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsRequest) Reset() {
	*x = ListVendorsRequest{}
	mi := &file_spend_v1_spend_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsRequest) ProtoMessage() {}

func (x *ListVendorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsRequest.ProtoReflect.Descriptor instead.
func (*ListVendorsRequest) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{9}
}

type ListVendorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vendors       []*Vendor              `protobuf:"bytes,1,rep,name=vendors,proto3" json:"vendors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVendorsResponse) Reset() {
	*x = ListVendorsResponse{}
	mi := &file_spend_v1_spend_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVendorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVendorsResponse) ProtoMessage() {}

func (x *ListVendorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVendorsResponse.ProtoReflect.Descriptor instead.
func (*ListVendorsResponse) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{10}
}

func (x *ListVendorsResponse) GetVendors() []*Vendor {
	if x != nil {
		return x.Vendors
	}
	return nil
}

type GetRenewalInfoRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	VendorName    string                 `protobuf:"bytes,2,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRenewalInfoRequest) Reset() {
	*x = GetRenewalInfoRequest{}
	mi := &file_spend_v1_spend_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRenewalInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRenewalInfoRequest) ProtoMessage() {}

func (x *GetRenewalInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRenewalInfoRequest.ProtoReflect.Descriptor instead.
func (*GetRenewalInfoRequest) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{11}
}

func (x *GetRenewalInfoRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetRenewalInfoRequest) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

type GetRenewalInfoResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Frequency        string                 `protobuf:"bytes,1,opt,name=frequency,proto3" json:"frequency,omitempty"`
	RenewalDate      string                 `protobuf:"bytes,2,opt,name=renewal_date,json=renewalDate,proto3" json:"renewal_date,omitempty"` // YYYY-MM-DD
	DaysUntilRenewal int32                  `protobuf:"varint,3,opt,name=days_until_renewal,json=daysUntilRenewal,proto3" json:"days_until_renewal,omitempty"`
	IsUrgent         bool                   `protobuf:"varint,4,opt,name=is_urgent,json=isUrgent,proto3" json:"is_urgent,omitempty"`
	UrgencyLabel     string                 `protobuf:"bytes,5,opt,name=urgency_label,json=urgencyLabel,proto3" json:"urgency_label,omitempty"`
	UrgencyColor     string                 `protobuf:"bytes,6,opt,name=urgency_color,json=urgencyColor,proto3" json:"urgency_color,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetRenewalInfoResponse) Reset() {
	*x = GetRenewalInfoResponse{}
	mi := &file_spend_v1_spend_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRenewalInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRenewalInfoResponse) ProtoMessage() {}

func (x *GetRenewalInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRenewalInfoResponse.ProtoReflect.Descriptor instead.
func (*GetRenewalInfoResponse) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{12}
}

func (x *GetRenewalInfoResponse) GetFrequency() string {
	if x != nil {
		return x.Frequency
	}
	return ""
}

func (x *GetRenewalInfoResponse) GetRenewalDate() string {
	if x != nil {
		return x.RenewalDate
	}
	return ""
}

func (x *GetRenewalInfoResponse) GetDaysUntilRenewal() int32 {
	if x != nil {
		return x.DaysUntilRenewal
	}
	return 0
}

func (x *GetRenewalInfoResponse) GetIsUrgent() bool {
	if x != nil {
		return x.IsUrgent
	}
	return false
}

func (x *GetRenewalInfoResponse) GetUrgencyLabel() string {
	if x != nil {
		return x.UrgencyLabel
	}
	return ""
}

func (x *GetRenewalInfoResponse) GetUrgencyColor() string {
	if x != nil {
		return x.UrgencyColor
	}
	return ""
}

type ExportSubscriptionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSubscriptionsRequest) Reset() {
	*x = ExportSubscriptionsRequest{}
	mi := &file_spend_v1_spend_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSubscriptionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSubscriptionsRequest) ProtoMessage() {}

func (x *ExportSubscriptionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSubscriptionsRequest.ProtoReflect.Descriptor instead.
func (*ExportSubscriptionsRequest) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{13}
}

func (x *ExportSubscriptionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ExportSubscriptionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportSubscriptionsResponse) Reset() {
	*x = ExportSubscriptionsResponse{}
	mi := &file_spend_v1_spend_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportSubscriptionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportSubscriptionsResponse) ProtoMessage() {}

func (x *ExportSubscriptionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spend_v1_spend_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportSubscriptionsResponse.ProtoReflect.Descriptor instead.
func (*ExportSubscriptionsResponse) Descriptor() ([]byte, []int) {
	return file_spend_v1_spend_proto_rawDescGZIP(), []int{14}
}

func (x *ExportSubscriptionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_spend_v1_spend_proto protoreflect.FileDescriptor

const file_spend_v1_spend_proto_rawDesc = "" +
	"\n" +
	"\x14spend/v1/spend.proto\x12\bspend.v1\"\x81\x02\n" +
	"\x06Vendor\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12'\n" +
	"\x0fnormalized_name\x18\x03 \x01(\tR\x0enormalizedName\x12\x16\n" +
	"\x06domain\x18\x04 \x01(\tR\x06domain\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1f\n" +
	"\vvendor_type\x18\x06 \x01(\tR\n" +
	"vendorType\x12\x17\n" +
	"\ais_saas\x18\a \x01(\bR\x06isSaas\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\xbd\x03\n" +
	"\fSubscription\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1b\n" +
	"\tvendor_id\x18\x03 \x01(\tR\bvendorId\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x12\n" +
	"\x04plan\x18\x05 \x01(\tR\x04plan\x12\x14\n" +
	"\x05seats\x18\x06 \x01(\x05R\x05seats\x12#\n" +
	"\rbilling_cycle\x18\a \x01(\tR\fbillingCycle\x12!\n" +
	"\frenewal_date\x18\b \x01(\tR\vrenewalDate\x12\x16\n" +
	"\x06amount\x18\t \x01(\tR\x06amount\x12\x1a\n" +
	"\bcurrency\x18\n" +
	" \x01(\tR\bcurrency\x12)\n" +
	"\x10confidence_score\x18\v \x01(\tR\x0fconfidenceScore\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12(\n" +
	"\x10last_detected_at\x18\r \x01(\tR\x0elastDetectedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAt\"\xb1\x03\n" +
	"\rVendorSummary\x12\x1f\n" +
	"\vvendor_name\x18\x01 \x01(\tR\n" +
	"vendorName\x124\n" +
	"\x16normalized_vendor_name\x18\x02 \x01(\tR\x14normalizedVendorName\x12!\n" +
	"\ftotal_amount\x18\x03 \x01(\tR\vtotalAmount\x12+\n" +
	"\x11transaction_count\x18\x04 \x01(\x05R\x10transactionCount\x12%\n" +
	"\x0eaverage_amount\x18\x05 \x01(\tR\raverageAmount\x12\x1d\n" +
	"\n" +
	"min_amount\x18\x06 \x01(\tR\tminAmount\x12\x1d\n" +
	"\n" +
	"max_amount\x18\a \x01(\tR\tmaxAmount\x12#\n" +
	"\rlatest_amount\x18\b \x01(\tR\flatestAmount\x12\x1d\n" +
	"\n" +
	"first_date\x18\t \x01(\tR\tfirstDate\x12\x1b\n" +
	"\tlast_date\x18\n" +
	" \x01(\tR\blastDate\x12\x17\n" +
	"\ais_saas\x18\v \x01(\bR\x06isSaas\x12\x1a\n" +
	"\bcategory\x18\f \x01(\tR\bcategory\"a\n" +
	"\x10UploadCSVRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\"\xa8\x02\n" +
	"\x11UploadCSVResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x02 \x01(\x05R\ttotalRows\x12+\n" +
	"\x11transaction_count\x18\x03 \x01(\x05R\x10transactionCount\x12\x1d\n" +
	"\n" +
	"saas_count\x18\x04 \x01(\x05R\tsaasCount\x125\n" +
	"\x16subscriptions_upserted\x18\x05 \x01(\x05R\x15subscriptionsUpserted\x12\x1d\n" +
	"\n" +
	"row_errors\x18\x06 \x03(\tR\trowErrors\x125\n" +
	"\tsummaries\x18\a \x03(\v2\x17.spend.v1.VendorSummaryR\tsummaries\"N\n" +
	"\x10ScanInboxRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12!\n" +
	"\fmax_messages\x18\x02 \x01(\x05R\vmaxMessages\"\xc5\x01\n" +
	"\x11ScanInboxResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x02 \x01(\x05R\n" +
	"duplicates\x12)\n" +
	"\x10not_subscription\x18\x03 \x01(\x05R\x0fnotSubscription\x12\x1b\n" +
	"\tno_signal\x18\x04 \x01(\x05R\bnoSignal\x12\x1a\n" +
	"\bupserted\x18\x05 \x01(\x05R\bupserted\x12\x16\n" +
	"\x06errors\x18\x06 \x01(\x05R\x06errors\"3\n" +
	"\x18ListSubscriptionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"Y\n" +
	"\x19ListSubscriptionsResponse\x12<\n" +
	"\rsubscriptions\x18\x01 \x03(\v2\x16.spend.v1.SubscriptionR\rsubscriptions\"\x14\n" +
	"\x12ListVendorsRequest\"A\n" +
	"\x13ListVendorsResponse\x12*\n" +
	"\avendors\x18\x01 \x03(\v2\x10.spend.v1.VendorR\avendors\"Q\n" +
	"\x15GetRenewalInfoRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1f\n" +
	"\vvendor_name\x18\x02 \x01(\tR\n" +
	"vendorName\"\xee\x01\n" +
	"\x16GetRenewalInfoResponse\x12\x1c\n" +
	"\tfrequency\x18\x01 \x01(\tR\tfrequency\x12!\n" +
	"\frenewal_date\x18\x02 \x01(\tR\vrenewalDate\x12,\n" +
	"\x12days_until_renewal\x18\x03 \x01(\x05R\x10daysUntilRenewal\x12\x1b\n" +
	"\tis_urgent\x18\x04 \x01(\bR\bisUrgent\x12#\n" +
	"\rurgency_label\x18\x05 \x01(\tR\furgencyLabel\x12#\n" +
	"\rurgency_color\x18\x06 \x01(\tR\furgencyColor\"5\n" +
	"\x1aExportSubscriptionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"1\n" +
	"\x1bExportSubscriptionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xfd\x03\n" +
	"\fSpendService\x12D\n" +
	"\tUploadCSV\x12\x1a.spend.v1.UploadCSVRequest\x1a\x1b.spend.v1.UploadCSVResponse\x12D\n" +
	"\tScanInbox\x12\x1a.spend.v1.ScanInboxRequest\x1a\x1b.spend.v1.ScanInboxResponse\x12\\\n" +
	"\x11ListSubscriptions\x12\".spend.v1.ListSubscriptionsRequest\x1a#.spend.v1.ListSubscriptionsResponse\x12J\n" +
	"\vListVendors\x12\x1c.spend.v1.ListVendorsRequest\x1a\x1d.spend.v1.ListVendorsResponse\x12S\n" +
	"\x0eGetRenewalInfo\x12\x1f.spend.v1.GetRenewalInfoRequest\x1a .spend.v1.GetRenewalInfoResponse\x12b\n" +
	"\x13ExportSubscriptions\x12$.spend.v1.ExportSubscriptionsRequest\x1a%.spend.v1.ExportSubscriptionsResponseB9Z7github.com/subtally/subtally/gen/proto/spend/v1;spendpbb\x06proto3"

var (
	file_spend_v1_spend_proto_rawDescOnce sync.Once
	file_spend_v1_spend_proto_rawDescData []byte
)

func file_spend_v1_spend_proto_rawDescGZIP() []byte {
	file_spend_v1_spend_proto_rawDescOnce.Do(func() {
		file_spend_v1_spend_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_spend_v1_spend_proto_rawDesc), len(file_spend_v1_spend_proto_rawDesc)))
	})
	return file_spend_v1_spend_proto_rawDescData
}

var file_spend_v1_spend_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_spend_v1_spend_proto_goTypes = []any{
	(*Vendor)(nil),                      // 0: spend.v1.Vendor
	(*Subscription)(nil),                // 1: spend.v1.Subscription
	(*VendorSummary)(nil),               // 2: spend.v1.VendorSummary
	(*UploadCSVRequest)(nil),            // 3: spend.v1.UploadCSVRequest
	(*UploadCSVResponse)(nil),           // 4: spend.v1.UploadCSVResponse
	(*ScanInboxRequest)(nil),            // 5: spend.v1.ScanInboxRequest
	(*ScanInboxResponse)(nil),           // 6: spend.v1.ScanInboxResponse
	(*ListSubscriptionsRequest)(nil),    // 7: spend.v1.ListSubscriptionsRequest
	(*ListSubscriptionsResponse)(nil),   // 8: spend.v1.ListSubscriptionsResponse
	(*ListVendorsRequest)(nil),          // 9: spend.v1.ListVendorsRequest
	(*ListVendorsResponse)(nil),         // 10: spend.v1.ListVendorsResponse
	(*GetRenewalInfoRequest)(nil),       // 11: spend.v1.GetRenewalInfoRequest
	(*GetRenewalInfoResponse)(nil),      // 12: spend.v1.GetRenewalInfoResponse
	(*ExportSubscriptionsRequest)(nil),  // 13: spend.v1.ExportSubscriptionsRequest
	(*ExportSubscriptionsResponse)(nil), // 14: spend.v1.ExportSubscriptionsResponse
}
var file_spend_v1_spend_proto_depIdxs = []int32{
	2,  // 0: spend.v1.UploadCSVResponse.summaries:type_name -> spend.v1.VendorSummary
	1,  // 1: spend.v1.ListSubscriptionsResponse.subscriptions:type_name -> spend.v1.Subscription
	0,  // 2: spend.v1.ListVendorsResponse.vendors:type_name -> spend.v1.Vendor
	3,  // 3: spend.v1.SpendService.UploadCSV:input_type -> spend.v1.UploadCSVRequest
	5,  // 4: spend.v1.SpendService.ScanInbox:input_type -> spend.v1.ScanInboxRequest
	7,  // 5: spend.v1.SpendService.ListSubscriptions:input_type -> spend.v1.ListSubscriptionsRequest
	9,  // 6: spend.v1.SpendService.ListVendors:input_type -> spend.v1.ListVendorsRequest
	11, // 7: spend.v1.SpendService.GetRenewalInfo:input_type -> spend.v1.GetRenewalInfoRequest
	13, // 8: spend.v1.SpendService.ExportSubscriptions:input_type -> spend.v1.ExportSubscriptionsRequest
	4,  // 9: spend.v1.SpendService.UploadCSV:output_type -> spend.v1.UploadCSVResponse
	6,  // 10: spend.v1.SpendService.ScanInbox:output_type -> spend.v1.ScanInboxResponse
	8,  // 11: spend.v1.SpendService.ListSubscriptions:output_type -> spend.v1.ListSubscriptionsResponse
	10, // 12: spend.v1.SpendService.ListVendors:output_type -> spend.v1.ListVendorsResponse
	12, // 13: spend.v1.SpendService.GetRenewalInfo:output_type -> spend.v1.GetRenewalInfoResponse
	14, // 14: spend.v1.SpendService.ExportSubscriptions:output_type -> spend.v1.ExportSubscriptionsResponse
	9,  // [9:15] is the sub-list for method output_type
	3,  // [3:9] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_spend_v1_spend_proto_init() }
func file_spend_v1_spend_proto_init() {
	if File_spend_v1_spend_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_spend_v1_spend_proto_rawDesc), len(file_spend_v1_spend_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_spend_v1_spend_proto_goTypes,
		DependencyIndexes: file_spend_v1_spend_proto_depIdxs,
		MessageInfos:      file_spend_v1_spend_proto_msgTypes,
	}.Build()
	File_spend_v1_spend_proto = out.File
	file_spend_v1_spend_proto_goTypes = nil
	file_spend_v1_spend_proto_depIdxs = nil
}
