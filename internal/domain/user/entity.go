package user

// Profile 用户公开资料
// 用户由独立的用户服务管理,本服务只读取展示所需的字段
type Profile struct {
	ID             int64
	Username       string
	ProfilePicture *string
}
