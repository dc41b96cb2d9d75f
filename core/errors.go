package core

import (
	"errors"
	"fmt"
)

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 模型错误：NOT_FITTED
//   - 批次错误：SCHEMA_MISMATCH, SHAPE_MISMATCH
//   - 容量错误：INVALID_CAPACITY
//   - 存储/特征错误：NOT_FOUND, NOT_SUPPORTED, UNAVAILABLE
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FITTED", "SCHEMA_MISMATCH"）
	Message string // 错误消息
	Module  string // 模块名称（如 "model", "allocate", "store"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// IsDomainError 检查错误（或其 wrap 链）是否为 DomainError 类型
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 从错误的 wrap 链中取出 DomainError，没有则返回 nil
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	// 决策链路错误代码
	ErrorCodeNotFitted       = "NOT_FITTED"       // 预测器未训练
	ErrorCodeSchemaMismatch  = "SCHEMA_MISMATCH"  // 批次内记录字段不一致
	ErrorCodeInvalidCapacity = "INVALID_CAPACITY" // 仓库容量非法（负数）
	ErrorCodeShapeMismatch   = "SHAPE_MISMATCH"   // 输入数组长度不一致

	// 通用错误代码
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 服务不可用
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误
)

// 模块名称常量
const (
	ModuleModel     = "model"     // 预测模型模块
	ModulePipeline  = "pipeline"  // 决策链路模块
	ModuleAllocate  = "allocate"  // 仓库分配模块
	ModuleTransport = "transport" // 运输打分模块
	ModuleSustain   = "sustain"   // 可持续指标模块
	ModuleStore     = "store"     // 存储模块
	ModuleFeature   = "feature"   // 特征模块
	ModuleService   = "service"   // 服务模块
)

// NewNotFittedError 创建预测器未训练错误。
// 决策链路遇到此错误立即中止对应阶段并上报（不重试：预测确定性，重试无意义）。
func NewNotFittedError(module, predictor string) *DomainError {
	return NewDomainError(module, ErrorCodeNotFitted,
		fmt.Sprintf("predictor %q used before fit", predictor))
}

// NewSchemaMismatchError 创建批次字段不一致错误。
func NewSchemaMismatchError(module, message string) *DomainError {
	return NewDomainError(module, ErrorCodeSchemaMismatch, message)
}

// NewInvalidCapacityError 创建容量非法错误。
func NewInvalidCapacityError(warehouse string, capacity int) *DomainError {
	return NewDomainError(ModuleAllocate, ErrorCodeInvalidCapacity,
		fmt.Sprintf("warehouse %q has invalid capacity %d", warehouse, capacity))
}

// NewShapeMismatchError 创建数组长度不一致错误。
func NewShapeMismatchError(module string, want, got int) *DomainError {
	return NewDomainError(module, ErrorCodeShapeMismatch,
		fmt.Sprintf("input length mismatch: want %d, got %d", want, got))
}

// 通用错误检查函数

// IsNotFitted 检查错误是否为 NOT_FITTED
func IsNotFitted(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFitted
	}
	return false
}

// IsSchemaMismatch 检查错误是否为 SCHEMA_MISMATCH
func IsSchemaMismatch(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeSchemaMismatch
	}
	return false
}

// IsInvalidCapacity 检查错误是否为 INVALID_CAPACITY
func IsInvalidCapacity(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeInvalidCapacity
	}
	return false
}

// IsShapeMismatch 检查错误是否为 SHAPE_MISMATCH
func IsShapeMismatch(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeShapeMismatch
	}
	return false
}

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeNotSupported
	}
	return false
}

// IsUnavailable 检查错误是否为 UNAVAILABLE
func IsUnavailable(err error) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == ErrorCodeUnavailable
	}
	return false
}

// ErrStoreNotFound 存储层 key 不存在的标准错误。
var ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

// ErrStoreNotSupported 存储后端不支持某操作的标准错误。
var ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
