package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/config"
	"interview_prep_client/internal/service"
	"interview_prep_client/internal/session"
	"interview_prep_client/internal/util"
	"interview_prep_client/pkg/logger"
	"interview_prep_client/pkg/monitoring"
	"interview_prep_client/pkg/storage"
	"interview_prep_client/pkg/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config    *config.Config
	Store     *session.Store
	Storage   *storage.DB
	Auth      *service.AuthService
	Knowledge *service.KnowledgeService
	Exercise  *service.ExerciseService
	Progress  *service.ProgressService
	User      *service.UserService

	tracerProvider *sdktrace.TracerProvider
}

// Options 一次命令执行的全部输入，由 main 的命令行参数填充
type Options struct {
	Command     string
	Email       string
	Password    string
	Username    string
	Avatar      string
	ID          uint
	Page        int
	PageSize    int
	CategoryID  uint
	KnowledgeID uint
	Difficulty  string
	Frequency   string
	Search      string
	Answer      string // 逗号分隔的选项，如 A,C
	Status      string
	Mastery     int
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	monitoring.Init()

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		provider, err := tracing.InitTracer("interview-prep-client", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Warn("Tracing init failed", zap.Error(err))
		} else {
			tp = provider
		}
	}

	kv, err := storage.Open(cfg.Session.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	store, err := session.New(kv)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	store.OnInvalidate(func() {
		fmt.Println("会话已失效，请重新登录")
	})

	client := api.New(cfg, store)

	return &App{
		Config:    cfg,
		Store:     store,
		Storage:   kv,
		Auth:      service.NewAuthService(client, store),
		Knowledge: service.NewKnowledgeService(client),
		Exercise:  service.NewExerciseService(client),
		Progress:  service.NewProgressService(client),
		User:      service.NewUserService(client),

		tracerProvider: tp,
	}, nil
}

// Close 退出前落盘：flush 批量导出的 span，再关会话存储
func (a *App) Close() {
	if a.tracerProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}
	if err := a.Storage.Close(); err != nil {
		logger.Log.Warn("Close session storage failed", zap.Error(err))
	}
}

func (a *App) Run(ctx context.Context, opts Options) error {
	switch opts.Command {
	case "register":
		return a.register(ctx, opts)
	case "login":
		return a.login(ctx, opts)
	case "logout":
		return a.logout()
	case "whoami":
		return a.whoami(ctx)
	case "categories":
		return a.categories(ctx)
	case "knowledge":
		return a.knowledgeList(ctx, opts)
	case "knowledge-get":
		return a.knowledgeGet(ctx, opts)
	case "graph":
		return a.graph(ctx, opts)
	case "exercises":
		return a.exerciseList(ctx, opts)
	case "exercise-get":
		return a.exerciseGet(ctx, opts)
	case "submit":
		return a.submit(ctx, opts)
	case "wrong":
		return a.wrongList(ctx, opts)
	case "progress":
		return a.progressList(ctx, opts)
	case "progress-update":
		return a.progressUpdate(ctx, opts)
	case "stats":
		return a.stats(ctx)
	case "user-get":
		return a.userGet(ctx, opts)
	case "user-update":
		return a.userUpdate(ctx, opts)
	default:
		return fmt.Errorf("%w: %q", util.ErrUnknownCommand, opts.Command)
	}
}

func (a *App) register(ctx context.Context, opts Options) error {
	if opts.Email == "" || opts.Password == "" || opts.Username == "" {
		return fmt.Errorf("%w: email/password/username", util.ErrMissingField)
	}
	resp, err := a.Auth.Register(ctx, opts.Email, opts.Password, opts.Username)
	if err != nil {
		return err
	}
	fmt.Printf("注册成功：%s (id=%d)\n", resp.User.Username, resp.User.ID)
	return nil
}

func (a *App) login(ctx context.Context, opts Options) error {
	if opts.Email == "" || opts.Password == "" {
		return fmt.Errorf("%w: email/password", util.ErrMissingField)
	}
	resp, err := a.Auth.Login(ctx, opts.Email, opts.Password)
	if err != nil {
		return err
	}
	fmt.Printf("登录成功：%s (id=%d)\n", resp.User.Username, resp.User.ID)
	return nil
}

func (a *App) logout() error {
	if err := a.Store.Logout(); err != nil {
		return err
	}
	fmt.Println("已退出登录")
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	if !a.Store.IsAuthenticated() {
		return util.ErrNotLoggedIn
	}
	user, err := a.Auth.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (id=%d)\n", user.Username, user.Email, user.ID)
	if expiry, ok := a.Store.TokenExpiry(); ok {
		fmt.Printf("token 有效期至 %s\n", expiry.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (a *App) categories(ctx context.Context) error {
	categories, err := a.Knowledge.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		fmt.Printf("%d\t%s\t%s\n", c.ID, c.Name, c.Description)
	}
	return nil
}

func (a *App) knowledgeList(ctx context.Context, opts Options) error {
	page, err := a.Knowledge.List(ctx, service.ListKnowledgeQuery{
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		CategoryID: opts.CategoryID,
		Difficulty: opts.Difficulty,
		Frequency:  opts.Frequency,
		Search:     opts.Search,
	})
	if err != nil {
		return err
	}
	for _, kp := range page.Items {
		fmt.Printf("%d\t[%s/%s]\t%s\n", kp.ID, kp.Difficulty, kp.Frequency, kp.Title)
	}
	fmt.Printf("共 %d 条，第 %d 页\n", page.Total, page.Page)
	return nil
}

func (a *App) knowledgeGet(ctx context.Context, opts Options) error {
	kp, err := a.Knowledge.Get(ctx, opts.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n\n%s\n", kp.Title, kp.Description)
	if kp.CodeExample != "" {
		fmt.Printf("\n%s\n", kp.CodeExample)
	}
	for _, ref := range kp.References {
		fmt.Printf("参考：%s\n", ref)
	}
	return nil
}

func (a *App) graph(ctx context.Context, opts Options) error {
	graph, err := a.Knowledge.Graph(ctx, opts.CategoryID)
	if err != nil {
		return err
	}
	fmt.Printf("%d 个节点，%d 条边\n", len(graph.Nodes), len(graph.Edges))
	for _, e := range graph.Edges {
		fmt.Printf("%s -[%s]-> %s\n", e.Source, e.Type, e.Target)
	}
	return nil
}

func (a *App) exerciseList(ctx context.Context, opts Options) error {
	page, err := a.Exercise.List(ctx, service.ListExercisesQuery{
		Page:        opts.Page,
		PageSize:    opts.PageSize,
		KnowledgeID: opts.KnowledgeID,
		Difficulty:  opts.Difficulty,
	})
	if err != nil {
		return err
	}
	for _, e := range page.Items {
		fmt.Printf("%d\t[%s]\t%s\n", e.ID, e.Type, e.Question)
	}
	fmt.Printf("共 %d 条，第 %d 页\n", page.Total, page.Page)
	return nil
}

func (a *App) exerciseGet(ctx context.Context, opts Options) error {
	e, err := a.Exercise.Get(ctx, opts.ID)
	if err != nil {
		return err
	}
	fmt.Println(e.Question)
	for i, opt := range e.Options {
		fmt.Printf("%c. %s\n", 'A'+i, opt)
	}
	return nil
}

func (a *App) submit(ctx context.Context, opts Options) error {
	if opts.Answer == "" {
		return fmt.Errorf("%w: answer", util.ErrMissingField)
	}
	answer := strings.Split(opts.Answer, ",")
	result, err := a.Exercise.Submit(ctx, opts.ID, answer)
	if err != nil {
		return err
	}
	if result.IsCorrect {
		fmt.Println("回答正确")
	} else {
		fmt.Printf("回答错误，正确答案：%s\n", strings.Join(result.CorrectAnswer, ","))
	}
	if result.Explanation != "" {
		fmt.Printf("解析：%s\n", result.Explanation)
	}
	return nil
}

func (a *App) wrongList(ctx context.Context, opts Options) error {
	page, err := a.Exercise.WrongList(ctx, opts.Page, opts.PageSize)
	if err != nil {
		return err
	}
	for _, w := range page.Items {
		fmt.Printf("%d\t错 %d 次\t%s\n", w.ID, w.WrongCount, w.Question)
	}
	fmt.Printf("共 %d 条\n", page.Total)
	return nil
}

func (a *App) progressList(ctx context.Context, opts Options) error {
	items, err := a.Progress.List(ctx, opts.KnowledgeID, opts.CategoryID)
	if err != nil {
		return err
	}
	for _, p := range items {
		fmt.Printf("知识点 %d\t%s\t掌握度 %d\n", p.KnowledgePointID, p.Status, p.MasteryLevel)
	}
	return nil
}

func (a *App) progressUpdate(ctx context.Context, opts Options) error {
	if opts.Status == "" {
		return fmt.Errorf("%w: status", util.ErrMissingField)
	}
	p, err := a.Progress.Update(ctx, service.UpdateProgressRequest{
		KnowledgePointID: opts.KnowledgeID,
		Status:           opts.Status,
		MasteryLevel:     opts.Mastery,
	})
	if err != nil {
		return err
	}
	fmt.Printf("进度已更新：知识点 %d -> %s (掌握度 %d)\n", p.KnowledgePointID, p.Status, p.MasteryLevel)
	return nil
}

func (a *App) stats(ctx context.Context) error {
	stats, err := a.Progress.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("总计 %d：已完成 %d，进行中 %d，未开始 %d，平均掌握度 %.1f\n",
		stats.Total, stats.Completed, stats.InProgress, stats.NotStarted, stats.MasteryAvg)
	return nil
}

func (a *App) userGet(ctx context.Context, opts Options) error {
	user, err := a.User.Get(ctx, opts.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (id=%d)\n", user.Username, user.Email, user.ID)
	return nil
}

func (a *App) userUpdate(ctx context.Context, opts Options) error {
	user, err := a.User.Update(ctx, opts.ID, service.UpdateUserRequest{
		Username: opts.Username,
		Avatar:   opts.Avatar,
	})
	if err != nil {
		return err
	}
	// 改的是当前登录用户时同步本地会话
	if current := a.Store.User(); current != nil && current.ID == user.ID {
		if err := a.Store.UpdateUser(user); err != nil {
			return err
		}
	}
	fmt.Printf("用户已更新：%s\n", user.Username)
	return nil
}
