package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway 翻译与质量评估网关接口，便于测试替换
type Gateway interface {
	// Translate 调用模型翻译文本，调用失败时错误原样上抛
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	// EvaluateQuality 调用模型评估翻译质量，返回0-1之间的得分；
	// 模型返回内容无法解析为数字时降级为0，不视为错误
	EvaluateQuality(ctx context.Context, original, translation, sourceLang, targetLang string) (float64, error)
}

// Client OpenAI兼容接口的模型调用客户端
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// Message 对话消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionRequest 对话补全请求体
type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// chatCompletionResponse 对话补全响应体
type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// NewClient 创建模型调用客户端
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// Translate 翻译文本
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text from %s to %s:\n\n%s", sourceLang, targetLang, text)
	return c.chatCompletion(ctx, prompt)
}

// EvaluateQuality 评估翻译质量
func (c *Client) EvaluateQuality(ctx context.Context, original, translation, sourceLang, targetLang string) (float64, error) {
	prompt := fmt.Sprintf(
		"Please evaluate the quality of this translation from %s to %s.\n"+
			"Original: %s\n"+
			"Translation: %s\n"+
			"Rate the translation quality from 0 to 1, where:\n"+
			"0 = completely wrong\n"+
			"1 = perfect translation\n"+
			"Return only the number.",
		sourceLang, targetLang, original, translation,
	)

	content, err := c.chatCompletion(ctx, prompt)
	if err != nil {
		return 0, err
	}

	// 解析失败时降级为默认得分0
	score, ok := ParseScore(content)
	if !ok {
		return 0, nil
	}
	return score, nil
}

// chatCompletion 调用对话补全接口并返回首个回复内容
func (c *Client) chatCompletion(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("序列化请求失败: %w", err)
	}

	// 构建HTTP请求
	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	// 发送请求
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	// 读取响应
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查HTTP状态码
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API返回错误: status=%d, body=%s", resp.StatusCode, string(body))
	}

	// 解析响应
	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("响应中没有choices")
	}

	return result.Choices[0].Message.Content, nil
}
