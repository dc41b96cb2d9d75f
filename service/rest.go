package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rushteam/returnkit/core"
)

// RESTClient 是基于 HTTP/JSON 的模型服务客户端，实现 core.MLService。
// 兼容 TensorFlow Serving / KServe 风格的 REST 预测协议：
//
//	POST {endpoint}/v1/models/{model}:predict
//	POST {endpoint}/v1/models/{model}/versions/{version}:predict
//
// 工程特征：
//   - 实时性：一般（HTTP/JSON，低于 gRPC）
//   - 可扩展性：强（支持多模型、多版本）
//   - 功能：完整（回归标量与分类概率分布都可解析）
//
// 使用场景：
//   - 退货风险/处置分类等模型托管在外部推理服务
//   - 经 model.RPCPredictor 适配为 core.Predictor 进入决策链路
type RESTClient struct {
	// Endpoint 服务端点，例如 "http://localhost:8501"
	Endpoint string

	// ModelName 默认模型名称（请求未指定时使用）
	ModelName string

	// Timeout 超时时间
	Timeout time.Duration

	// Token Bearer 认证 Token（可选）
	Token string

	httpClient *http.Client
}

// NewRESTClient 创建一个新的模型服务客户端。
func NewRESTClient(endpoint, modelName string, opts ...RESTOption) *RESTClient {
	client := &RESTClient{
		Endpoint:  endpoint,
		ModelName: modelName,
		Timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(client)
	}
	client.httpClient = &http.Client{Timeout: client.Timeout}
	return client
}

// RESTOption 客户端配置选项
type RESTOption func(*RESTClient)

// WithRESTTimeout 设置超时时间
func WithRESTTimeout(timeout time.Duration) RESTOption {
	return func(c *RESTClient) {
		c.Timeout = timeout
	}
}

// WithRESTToken 设置 Bearer 认证 Token
func WithRESTToken(token string) RESTOption {
	return func(c *RESTClient) {
		c.Token = token
	}
}

// Predict 实现 core.MLService 接口
func (c *RESTClient) Predict(ctx context.Context, req *core.MLPredictRequest) (*core.MLPredictResponse, error) {
	if len(req.Instances) == 0 && len(req.Features) == 0 {
		return nil, fmt.Errorf("instances or features are required")
	}

	model := req.ModelName
	if model == "" {
		model = c.ModelName
	}
	url := fmt.Sprintf("%s/v1/models/%s:predict", c.Endpoint, model)
	if req.ModelVersion != "" {
		url = fmt.Sprintf("%s/v1/models/%s/versions/%s:predict", c.Endpoint, model, req.ModelVersion)
	}

	body := make(map[string]interface{})
	if len(req.Instances) > 0 {
		body["instances"] = req.Instances
	} else {
		body["inputs"] = req.Features
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("model serving error: status=%d, body=%s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Predictions []interface{} `json:"predictions"`
		Outputs     interface{}   `json:"outputs,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return parsePredictions(result.Predictions, result.Outputs)
}

// parsePredictions 解析预测结果：
//   - 标量行：回归输出，进入 Predictions
//   - 数组行：分类概率分布，整行进入 Probabilities，argmax 进入 Predictions
func parsePredictions(rows []interface{}, outputs interface{}) (*core.MLPredictResponse, error) {
	resp := &core.MLPredictResponse{Outputs: outputs}
	for _, row := range rows {
		switch v := row.(type) {
		case float64:
			resp.Predictions = append(resp.Predictions, v)
		case []interface{}:
			probs := make([]float64, 0, len(v))
			for _, p := range v {
				fv, ok := p.(float64)
				if !ok {
					return nil, fmt.Errorf("unexpected probability type: %T", p)
				}
				probs = append(probs, fv)
			}
			if len(probs) == 0 {
				return nil, fmt.Errorf("empty prediction row")
			}
			best := 0
			for j, p := range probs {
				if p > probs[best] {
					best = j
				}
			}
			resp.Probabilities = append(resp.Probabilities, probs)
			resp.Predictions = append(resp.Predictions, float64(best))
		default:
			return nil, fmt.Errorf("unexpected prediction type: %T", row)
		}
	}
	return resp, nil
}

// Health 实现 core.MLService 接口：探测模型状态端点。
func (c *RESTClient) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/models/%s", c.Endpoint, c.ModelName)
	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status=%d", resp.StatusCode)
	}
	return nil
}

// Close 实现 core.MLService 接口。
func (c *RESTClient) Close(ctx context.Context) error {
	c.httpClient.CloseIdleConnections()
	return nil
}
